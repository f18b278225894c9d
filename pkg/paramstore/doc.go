// Package paramstore is a convenience layer over AWS Systems Manager
// Parameter Store, adding hierarchical group prefixes, name validation
// and cleaning, and strict create/update/upsert semantics on top of the
// raw SSM client.
//
// A Store is configured once with a region, an optional group prefix
// and a clean-names toggle, then exposes synchronous operations that
// each issue at most two SSM calls:
//
//	store, err := paramstore.New(ctx, "eu-central-1",
//	    paramstore.WithGroup("/myapp/staging"))
//	if err != nil {
//	    return err
//	}
//
//	if _, err := store.Create(ctx, "DB_HOST", "db1"); err != nil {
//	    return err
//	}
//
//	values, err := store.ListGroup(ctx, false)
//	// values == map[string]string{"DB_HOST": "db1"}
//
// # Existence semantics
//
// Create never overwrites (AlreadyExistsError when the key exists),
// Update never creates (NotFoundError when it does not, checked with a
// preliminary Get before anything is written), and Upsert does either
// unconditionally. Get treats a missing parameter as an absent result,
// not an error.
//
// # Error handling
//
// All errors are struct types usable with errors.As. Name problems
// (paramname.EmptyNameError, paramname.InvalidCharactersError) are
// returned before any remote call. Backend conditions the layer does
// not translate are wrapped in BackendError.
//
// # Concurrency
//
// A Store holds no mutable state beyond its configuration. Operations
// may be called from multiple goroutines; callers that reconfigure a
// shared Store with SetGroup must serialize that themselves.
package paramstore
