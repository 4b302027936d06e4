package registry

// Registrable is implemented by objects kept in an ObjectStore. OnRegister
// runs once after the object is stored and OnRemove once after it is removed.
type Registrable interface {
	OnRegister()
	OnRemove()
}

// ObjectStore holds named objects and notifies them of their own
// registration and removal.
type ObjectStore[T Registrable] struct {
	objects *UniqueDict[string, T]
}

// NewObjectStore creates an empty ObjectStore.
func NewObjectStore[T Registrable]() *ObjectStore[T] {
	return &ObjectStore[T]{
		objects: NewUniqueDict[string, T](),
	}
}

// HasObject reports whether an object is registered under name.
func (s *ObjectStore[T]) HasObject(name string) bool {
	return s.objects.Has(name)
}

// RegisterObject stores obj under name, then calls obj.OnRegister.
// Returns ErrDuplicateKey, without calling the hook, if name is taken.
func (s *ObjectStore[T]) RegisterObject(name string, obj T) (T, error) {
	if err := s.objects.Set(name, obj); err != nil {
		var zero T
		return zero, err
	}
	obj.OnRegister()
	return obj, nil
}

// RetrieveObject returns the object registered under name.
// Returns ErrKeyNotFound if nothing is registered under name.
func (s *ObjectStore[T]) RetrieveObject(name string) (T, error) {
	return s.objects.Get(name)
}

// RemoveObject deletes the object registered under name, then calls its
// OnRemove hook. Returns ErrKeyNotFound if nothing is registered under name.
func (s *ObjectStore[T]) RemoveObject(name string) (T, error) {
	obj, err := s.objects.Delete(name)
	if err != nil {
		return obj, err
	}
	obj.OnRemove()
	return obj, nil
}

// Names returns the registered names in registration order.
func (s *ObjectStore[T]) Names() []string {
	return s.objects.Keys()
}
