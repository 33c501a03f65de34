// Package sommelier provides an embedded Go client for the sommelier wine
// narrative service backed by Valkey or Redis.
//
// The client wires the same services the HTTP API uses, so generated
// narratives are cached per wine and language and shared with any API
// instance pointed at the same database.
//
//	client, _ := sommelier.New(ctx, sommelier.WithValkey("localhost:6379", ""))
//	defer client.Close()
//
//	profile, cached, _ := client.Profile(ctx, wineID, "es-AR")
//	cmp, _, _ := client.Compare(ctx, malbecID, chardonnayID, "en-US")
//
// Without WithOpenAI or WithGenerator the client uses the deterministic
// built-in generator, which is suitable for tests and local development.
package sommelier
