package typescript

// builtinDefinitions replace generated component declarations whose
// catalog shape loses information, such as a payload type parameter.
var builtinDefinitions = map[string]string{
	"PluginResourceEvent": `interface PluginResourceEvent<DataType = unknown> {
	uri: string
	eventType: {{namespace}}PluginResourceEventType
	data: DataType
}`,
}

// builtinEventTypes are the payloads any event name may carry.
var builtinEventTypes = []string{
	"PluginResourceEvent",
	"BindingCallbackEvent",
	"PluginLcdsEvent",
	"PluginRegionLocaleChangedEvent",
	"LogEvent",
	"PluginServiceProxyResponse",
}

// endpointMethods are the verbs listed in LCUEndpoints, in output order.
var endpointMethods = []string{"get", "post", "put", "patch", "head", "delete"}

const endpointHelpers = `// @ts-expect-error
export type LCUEndpoint<Method extends HttpMethod, Path extends EndpointsWithMethod<Method>> = LCUEndpointBodyType<Method, Path> extends never ? (...args: [...LCUEndpoints[Path][Method]["Parameters"]]) => Promise<LCUEndpointResponseType<Method, Path>> : (...args: [...LCUEndpoints[Path][Method]["Parameters"], body: LCUEndpointBodyType<Method, Path>]) => Promise<LCUEndpointResponseType<Method, Path>>
// @ts-expect-error
export type LCUEndpointResponseType<Method extends HttpMethod, Path extends EndpointsWithMethod<Method>> = LCUEndpoints[Path][Method]["Response"]
// @ts-expect-error
export type LCUEndpointBodyType<Method extends HttpMethod, Path extends EndpointsWithMethod<Method>> = LCUEndpoints[Path][Method]["Body"]

export type EndpointsWithMethod<Method extends HttpMethod> = { [K in keyof LCUEndpoints]: LCUEndpoints[K] extends { [key in Method]: { } } ? K : never }[keyof LCUEndpoints]

export type HttpMethod = "delete" | "get" | "head" | "patch" | "post" | "put";`
