// Package mockapi is an in-memory REST service that follows the URL conventions the resources
// package expects. Any path is a valid collection, so nesting works to any depth without
// configuration:
//
//	GET    /users               list (query parameters filter on string properties)
//	POST   /users               create; the "id" property is generated if missing
//	GET    /users/1             get
//	PUT    /users/1             replace
//	DELETE /users/1             delete, along with everything nested under it
//	POST   /users/search        list items matching every property of the request body
//	POST   /users/1/publish     run a registered item action
//	GET    /users/1/articles    nested collection
//
// It exists so that HTTPTransport and the example suite can run against a real HTTP server.
package mockapi
