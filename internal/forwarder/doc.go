// Package forwarder performs the outbound half of the gateway.
//
// A Forwarder turns a caller-supplied target URL into exactly one outbound
// GET and reports an Outcome:
//
//	f := forwarder.New(forwarder.NewClient(0), logging.Logger)
//	out := f.Forward(ctx, "https://example.com/data.json")
//	if !out.OK() {
//	    // out.Err.StatusCode, out.Err.Kind, out.Err.Message
//	}
//
// # Outcome mapping
//
//   - empty target: 400 MissingParameter, no network call
//   - transport failure (bad URL, DNS, refused, timeout): 500 ProxyRequestFailed
//   - upstream non-2xx: upstream status, ProxyRequestFailed
//   - upstream 2xx with JSON body: the body bytes unchanged
//   - upstream 2xx with any other body: the body as a JSON string
//
// There are no retries, no custom headers and no restriction on the target
// scheme or host. Any reachable address, loopback included, is fetched.
package forwarder
