// Package dynaquery provides a query-building and pagination layer over the
// AWS SDK for Go v2 DynamoDB client.
//
// The library turns DynamoDB's stateless, page-at-a-time Query and Scan
// primitives into fluent operations whose results can be consumed either as
// a single page or as a lazily paginated sequence that issues further
// requests on demand.
//
// # Key Concepts
//
// A Session binds a DynamoDB client to table naming and logging
// configuration. A Table declares a name and key schema; an Index describes
// a secondary index on a table. Query and Scan builders accumulate request
// parameters and select which remote primitive runs.
//
// # Basic Usage
//
//	// Describe the table's key schema
//	books := dynaquery.NewTable("books",
//	    dynaquery.StringKey("author"),
//	).WithRangeKey(dynaquery.StringKey("title"))
//
//	// Connect
//	session, err := dynaquery.NewSession(ctx)
//
//	// Query all books by an author, across every page
//	cursor := dynaquery.NewQuery[Book](session, books, "Tolkien").All()
//	for cursor.Next(ctx) {
//	    book := cursor.Resource()
//	    // ...
//	}
//	if err := cursor.Err(); err != nil {
//	    // ...
//	}
//
// # Single Pages
//
// The Single method executes exactly one request and returns that page,
// along with its continuation key:
//
//	page, err := dynaquery.NewScan[Book](session, books).Limit(25).Single(ctx)
//	for page.Next() {
//	    book := page.Resource()
//	}
//	token, err := dynaquery.MarshalStartKey(page.LastEvaluatedKey())
//
// The token round-trips through UnmarshalStartKey and the builders' StartKey
// method, so clients can resume paging across process boundaries.
//
// # Pagination
//
// Cursors thread each page's LastEvaluatedKey into the next request's
// ExclusiveStartKey and keep running totals of pages fetched, items
// returned, and records scanned. A page without a continuation key is the
// sole terminal signal; empty pages with a key keep the traversal going,
// which DynamoDB produces under provisioned-throughput limits.
//
// The package performs no retries and holds no state between pages; every
// request is self-contained. Abandoning a cursor simply stops further
// requests.
package dynaquery
