/*
Package packlist implements a conversational checklist assistant: it walks
a user through a catalog of checklists item by item, records a disposition
for each (take, take later, skip), and lets the user review and edit the
result afterwards.

The core is a pure session state machine. Every inbound event produces a
new session state plus one tagged rendering instruction; the host (CLI,
HTTP API, MCP server, chat bot) owns all I/O and turns instructions into
actual messages and buttons.

# Usage

	catalog, err := file.LoadCatalog("hiking_items.txt")
	if err != nil {
		log.Fatal(err)
	}

	assistant, err := packlist.New(catalog)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	_, render, err := assistant.Dispatch(ctx, "user-42", domain.Choose("hiking_items"))
	if err != nil {
		log.Fatal(err)
	}
	// render now asks for the first item; feed answers back with
	// domain.Answer(...) until the summary appears.

Sessions default to an in-memory store; pass WithStore to persist them on
disk or in Redis, and WithLocker to coordinate replicas.
*/
package packlist
