package mvc

import "github.com/tailored-agentic-units/ymvc/observability"

// Facade lifecycle event types.
const (
	EventProxyRegister    observability.EventType = "mvc.proxy.register"
	EventProxyRemove      observability.EventType = "mvc.proxy.remove"
	EventMediatorRegister observability.EventType = "mvc.mediator.register"
	EventMediatorRemove   observability.EventType = "mvc.mediator.remove"
	EventCommandRegister  observability.EventType = "mvc.command.register"
	EventCommandRemove    observability.EventType = "mvc.command.remove"
	EventNotifyError      observability.EventType = "mvc.notify.error"
)
