// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StatusTransportFailure is the sentinel status code meaning no HTTP
// response was received at all (DNS failure, connection refused,
// timeout). It is out-of-band: no real HTTP status is 0.
const StatusTransportFailure = 0

// SubmissionOutcome is the result of POSTing the resume Markdown to the
// ingestion endpoint: the HTTP status code and the response body text.
// On transport failure StatusCode is StatusTransportFailure and Body
// holds the stringified error.
type SubmissionOutcome struct {
	StatusCode int
	Body       string
}

// TransportFailed reports whether no HTTP response was received.
func (o SubmissionOutcome) TransportFailed() bool {
	return o.StatusCode == StatusTransportFailure
}

// Failed reports whether the submission must escalate: either transport
// failure or an HTTP error status.
func (o SubmissionOutcome) Failed() bool {
	return o.TransportFailed() || o.StatusCode >= 400
}
