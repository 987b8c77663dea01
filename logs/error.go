package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the context's span to err so a failure can be matched with its log lines.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
