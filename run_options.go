package go_payflow

import (
	"github.com/stremovskyy/go-payflow/log"
)

// RunOption tweaks one RequestSecureToken/CapturePayment/RefundPayment/Do call.
type RunOption func(*runOptions)

// DryRunHandler gets the POST that would have been sent. payload is the
// encoded body with PWD and card data masked.
type DryRunHandler func(method string, url string, payload string)

type runOptions struct {
	dryRun       bool
	dryRunHandle DryRunHandler
}

var dryRunLogger = log.NewDefault()

// DryRun builds the request but never posts it. Without a handler the
// masked payload is written to the default logger.
func DryRun(handler ...DryRunHandler) RunOption {
	return func(o *runOptions) {
		o.dryRun = true
		if len(handler) > 0 && handler[0] != nil {
			o.dryRunHandle = handler[0]
			return
		}
		o.dryRunHandle = defaultDryRunHandler
	}
}

func collectRunOptions(opts []RunOption) *runOptions {
	if len(opts) == 0 {
		return nil
	}

	r := &runOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (o *runOptions) isDryRun() bool {
	return o != nil && o.dryRun
}

func (o *runOptions) handleDryRun(method string, url string, payload string) {
	if o == nil || !o.dryRun || o.dryRunHandle == nil {
		return
	}
	o.dryRunHandle(method, url, payload)
}

func shouldDryRun(runOpts []RunOption, method string, url string, payload string) bool {
	opts := collectRunOptions(runOpts)
	if !opts.isDryRun() {
		return false
	}
	opts.handleDryRun(method, url, payload)
	return true
}

func defaultDryRunHandler(method string, url string, payload string) {
	dryRunLogger.Infof("Dry run: skipping request %s %s", method, url)
	if payload == "" {
		dryRunLogger.Infof("Dry run payload: <empty>")
		return
	}
	dryRunLogger.Infof("Dry run payload:\n%s", payload)
}
