package go_payflow

import (
	"strings"

	"github.com/stremovskyy/go-payflow/consts"
)

// Credentials identifies the merchant to Payflow.
//
// Vendor is the merchant login. User equals Vendor unless additional users were set up in PayPal Manager.
type Credentials struct {
	Partner  string
	Vendor   string
	User     string
	Password string
}

// Config is passed to NewClient. TestMode selects the pilot (sandbox) endpoint.
type Config struct {
	Credentials Credentials
	TestMode    bool
}

// EndpointURL returns the Payflow endpoint for the configured mode.
func (c Config) EndpointURL() string {
	if c.TestMode {
		return consts.TestEndpointURL
	}
	return consts.LiveEndpointURL
}

func (c Config) validate() error {
	ce := &ConfigError{}
	if strings.TrimSpace(c.Credentials.Partner) == "" {
		ce.Add("partner", "is required")
	}
	if strings.TrimSpace(c.Credentials.Vendor) == "" {
		ce.Add("vendor", "is required")
	}
	if strings.TrimSpace(c.Credentials.User) == "" {
		ce.Add("user", "is required")
	}
	if c.Credentials.Password == "" {
		ce.Add("password", "is required")
	}
	if ce.HasErrors() {
		return ce
	}
	return nil
}

func (c Credentials) params() map[string]string {
	return map[string]string{
		consts.ParamPartner:  c.Partner,
		consts.ParamVendor:   c.Vendor,
		consts.ParamUser:     c.User,
		consts.ParamPassword: c.Password,
	}
}
