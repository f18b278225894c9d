package paramstore_test

import (
	"context"
	"fmt"
	"log"

	"github.com/systmms/paramstore/pkg/paramstore"
	"github.com/systmms/paramstore/tests/fakes"
)

func Example() {
	ctx := context.Background()

	// WithClient injects a fake here; omit it to use the real AWS SSM
	// client for the given region.
	store, err := paramstore.New(ctx, "eu-central-1",
		paramstore.WithClient(fakes.NewFakeSSMClient()),
		paramstore.WithGroup("/myapp/staging"))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := store.Create(ctx, "DB_HOST", "db1"); err != nil {
		log.Fatal(err)
	}

	values, err := store.ListGroup(ctx, false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(values["DB_HOST"])
	// Output: db1
}
