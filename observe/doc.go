// Package observe provides the cross-cutting instrumentation composed
// around the dispatcher invocation: structured entry/exit logging, one
// trace span per invocation, and a cold-start metric in CloudWatch
// embedded metric format.
//
// Concerns are explicit middleware wrappers over the Handler type rather
// than implicit decoration:
//
//	handler := observe.Chain(dispatchHandler,
//	    observe.WithLogging(logger),
//	    observe.WithTracing(tracer),
//	    observe.WithColdStartMetric(metrics),
//	)
package observe
