// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists candidates and voters.

Two backends implement Store: SQLStore over Postgres or SQLite, and
MongoStore over MongoDB. Open picks one from the config:

	st, err := store.Open(ctx, cfg)
	defer st.Close(ctx)

Creating a voter whose name is taken returns ErrDuplicateName. Other
backend failures are wrapped in a *ServiceError naming the operation.
*/
package store
