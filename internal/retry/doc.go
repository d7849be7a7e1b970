// Package retry wraps fallible operations with a fixed-attempt retry policy.
//
// The same executor covers metadata fetches and asset downloads; it is
// generic over the operation's result type.
//
// # Usage
//
//	rec, err := retry.Do(ctx, policy, func(ctx context.Context) (apod.Record, error) {
//	    return client.Fetch(ctx, date)
//	})
//
// The default policy retries back-to-back with no delay between attempts.
// Set Policy.Delay to add a fixed pause. When every attempt fails, Do
// returns an *ExhaustedError wrapping the last underlying error.
package retry
