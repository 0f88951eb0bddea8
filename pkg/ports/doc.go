/*
Package ports declares the interfaces between the session engine and its
collaborators: the catalog source, the session store, the optional
distributed locker and the engine itself.

Adapters live under pkg/adapters; reusable contract-test suites for the
ports live in the tests subpackage.
*/
package ports
