// Package board implements the business logic for coven-board: user
// registration and login, posts, and threaded comments.
//
// # Services
//
//   - UserService: register, login (mints session tokens), profiles
//   - PostService: post CRUD with newest-first paging
//   - CommentService: threaded comments, oldest first per post
//
// # Authorization
//
// Mutations on posts, comments, and accounts are restricted to their
// author. The ownership check compares the resource's stored author
// identifier against the request principal, case-sensitively, and always
// runs after the resource is loaded: a missing resource reports not-found
// before any ownership decision is made.
//
// # Errors
//
// Services surface their failures directly as sentinel errors
// (ErrValidation, ErrUserNotFound, ErrBadCredentials, ErrForbidden) plus
// store.ErrNotFound and store.ErrDuplicateUser passed through from the
// storage layer. The HTTP layer maps these to status codes.
package board
