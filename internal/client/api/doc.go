// Package api contains the client-side building blocks for talking to the
// feedline backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the full REST surface: auth (SignUp/SignIn/Logout), profile and
//     interests, feeds (posts and videos), post mutations (like, comment,
//     share), user discovery, and image upload.
//  2. A concrete HTTP implementation (see RESTClient) that injects a bearer
//     token from a TokenSource on every authorized call, enforces a
//     per-request timeout, and maps transport failures, non-2xx statuses,
//     and success:false envelopes to a tagged error type.
//
// # Error Handling
//
// Every failure carries a Kind (KindTransport, KindStatus, KindPayload,
// KindCredentials) retrievable with KindOf, plus the human-readable message
// extracted from the response body when one is present. Missing credentials
// are additionally matchable as errors.Is(err, ErrNoCredentials).
//
// All operations accept context.Context and honor cancellation.
package api
