// Package mocks provides gomock-generated mocks for bookshelf-web ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	sessions := mocks.NewMockSessionStore(ctrl)
//	sessions.EXPECT().Get(gomock.Any(), "sid").Return(sess, nil)
package mocks

// Storage ports: SessionStore (Save, Get, Delete) and PreferenceStore (GetTheme, SetTheme, WatchTheme).
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/target/bookshelf-web/internal/ports SessionStore,PreferenceStore

// Backend ports implemented by internal/client: AuthBackend, CatalogBackend, BorrowBackend, OrderBackend.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=backend_mock.go github.com/target/bookshelf-web/internal/ports AuthBackend,CatalogBackend,BorrowBackend,OrderBackend
