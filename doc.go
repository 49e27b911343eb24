// Package woot is a client for the Chatwoot REST API built from declarative
// action tables.
//
// Each resource of a descriptor.Registry is bound to a Client at
// construction. Actions take keyword arguments only; the binder splits them
// into path values, query values, body fields and transport extras, renders
// the URL and hands the request to a Transport:
//
//	client := woot.New(woot.NewConfig("https://app.chatwoot.com", key))
//	res, err := client.Call(ctx, "contacts", "get", woot.Args{"account_id": 1, "id": 7})
//
// AsyncClient binds the same tables but sends every call on its own
// goroutine and transport, returning a Future.
package woot
