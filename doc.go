// Package campushub lists the platform catalogs (projects, teammates, mentors
// and funding opportunities) and narrows them with a free-text query and a set
// of selected tags.
//
// A record is visible when its searchable text contains the query
// (case-insensitive substring) and it carries at least one selected tag. An
// empty query or an empty tag set accepts everything. Results keep catalog
// order.
//
// # Catalogs backed by Redis, Valkey or an in-process store
//
//	client, _ := campushub.New(ctx, campushub.WithEmbedded(), campushub.WithSeed())
//	defer client.Close()
//
//	page, _ := client.Projects().Browse(ctx, campushub.FilterState{Tags: []string{"AI"}})
//	for _, p := range page.Items {
//	    fmt.Println(p.Title)
//	}
//
// # Schema-first listings over your own structs
//
//	type Course struct {
//	    Code  string   `campushub:"code,id"`
//	    Name  string   `campushub:"name,search"`
//	    Topic []string `campushub:"topics,tags"`
//	}
//
//	courses, _ := campushub.NewListing(items)
//	res, _ := courses.Filter().Query("data").Tag("Statistics").Do(ctx)
//
// # Interactive filtering
//
// A Browser owns one filter state and applies the chip and search box
// interactions to it:
//
//	b := client.Members().Browser()
//	b.SetQuery("design").ToggleTag("Figma")
//	visible, _ := b.Visible(ctx)
package campushub
