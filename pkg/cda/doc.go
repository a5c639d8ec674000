// Package cda provides types, interfaces, and helpers for working with the
// Content Delivery API.
//
// # Overview
//
// The cda package defines the domain types (Space, ContentType, Entry, Asset,
// SynchronizedSpace) and the interfaces for resource-oriented clients
// (ContentTypesClient, EntriesClient, AssetsClient). A concrete implementation
// is provided by the cdaclient package, which wires configuration, transport,
// and the metadata cache together. Most consumers should import cdaclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/cda/pkg/cda"
//	  "github.com/fivetwenty-io/cda/pkg/cdaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cdaclient.New(&cda.Config{SpaceID: "cfexampleapi", Token: "b4c0n"})
//	  if err != nil { log.Fatal(err) }
//
//	  entries, err := cli.Entries().List(ctx, cda.NewQueryParams().WithContentType("cat"))
//	  if err != nil { log.Fatal(err) }
//	  _ = entries
//	}
//
// # Caching
//
// Every client holds a process-local Cache with two slots: the space
// descriptor and the content-type dictionary. Both are populated lazily and
// replaced wholesale; entries and assets are never cached. FetchSpace and
// ObserveSpace always refresh the space slot, while the internal resolution
// used for decoding entries is cache-first with single-flight deduplication
// of concurrent fetches.
//
// # Asynchronous access
//
// Operation is a cold, single-value asynchronous computation. Get blocks the
// calling goroutine; Subscribe runs the operation on its own goroutine and
// delivers the result through a Callback on a caller-supplied Executor. Each
// subscription triggers an independent execution.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsMalformed make it easy to branch on common cases.
// Decode failures are wrapped with ErrMalformedResource and never clobber a
// previously cached value.
package cda
