package configs

// Billing configures how money is presented in reports.
type Billing struct {
	// Currency is an ISO 4217 code.
	Currency string `env:"CURRENCY" envDefault:"USD"`
	// Locale is a BCP 47 tag used to format amounts.
	Locale string `env:"LOCALE" envDefault:"en"`
}
