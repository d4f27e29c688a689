package cli

import (
	"context"
	"errors"
	"strconv"
	"time"
)

const defaultLiveDuration = 30 * time.Second

// Live prints server push messages for a while (30s unless a number of
// seconds is given).
func (a *App) Live(ctx context.Context, args []string) error {
	d := defaultLiveDuration
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return errUsage
		}
		d = time.Duration(n) * time.Second
	}

	token := a.session.Snapshot().Credential
	conn, err := dialRealtime(ctx, a.config.WSBaseURL, token, a.log)
	if err != nil {
		return a.fail(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	a.printf("Listening for %s...\n", d)
	err = conn.Listen(ctx, func(data []byte) {
		a.printf("<< %s\n", data)
	})
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return a.fail(err)
	}
	return nil
}
