package reporters

import "context"

// Reporter forwards send reports to a downstream sink (HTTP, SQS, SNS, Pub/Sub).
type Reporter interface {
	ID() string
	Type() string
	Report(ctx context.Context, rep Report) error
}
