package graphql

import "fmt"

// TransportError reports a non-2xx HTTP response from the endpoint.
type TransportError struct {
	StatusCode int
	Status     string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("endpoint returned %s", e.Status)
}

// QueryError reports errors returned by the GraphQL endpoint in the
// response's errors field. Errors holds the serialized errors array.
type QueryError struct {
	Errors string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("graphql errors: %s", e.Errors)
}

// MalformedResponseError reports a 2xx response whose body is not valid JSON.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("response is not valid JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
