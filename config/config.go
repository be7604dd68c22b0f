// Package config loads the assumptions of the simulator from defaults, an
// optional YAML file and LADDER_ environment variables, in increasing order of
// precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/etnz/ladder"
	"github.com/spf13/viper"
)

type Config struct {
	Currency  string         `mapstructure:"currency"`
	MaxMonths int            `mapstructure:"max_months"`
	Log       LogConfig      `mapstructure:"log"`
	Fees      FeesConfig     `mapstructure:"fees"`
	Property  PropertyConfig `mapstructure:"property"`
	Costs     CostsConfig    `mapstructure:"costs"`
	Lettings  LettingsConfig `mapstructure:"lettings"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type FeesConfig struct {
	MortgageArrangement float64 `mapstructure:"mortgage_arrangement"`
	Legal               float64 `mapstructure:"legal"`
	Survey              float64 `mapstructure:"survey"`
	Moving              float64 `mapstructure:"moving"`
	ProfessionalMoving  float64 `mapstructure:"professional_moving"`
}

type PropertyConfig struct {
	FlatValue           float64 `mapstructure:"flat_value"`
	HouseValue          float64 `mapstructure:"house_value"`
	TermYears           int     `mapstructure:"term_years"`
	StandardRate        float64 `mapstructure:"standard_rate"`
	LowDepositRate      float64 `mapstructure:"low_deposit_rate"`
	LowDepositThreshold float64 `mapstructure:"low_deposit_threshold"`
	ProfessionalMove    bool    `mapstructure:"professional_move"`
}

type CostsConfig struct {
	MaintenanceRate float64 `mapstructure:"maintenance_rate"`
	ServiceCharge   float64 `mapstructure:"service_charge"`
	Rent            float64 `mapstructure:"rent"`
}

type LettingsConfig struct {
	FlatRent       float64 `mapstructure:"flat_rent"`
	HouseRent      float64 `mapstructure:"house_rent"`
	ManagementRate float64 `mapstructure:"management_rate"`
	TermYears      int     `mapstructure:"term_years"`
}

// Load reads the configuration. An empty path skips the file and only reads
// the environment, like LADDER_PROPERTY_FLAT_VALUE=180000.
//
// The resulting assumptions are validated.
func Load(path string) (Config, error) {
	d := ladder.DefaultAssumptions()

	v := viper.New()
	v.SetEnvPrefix("LADDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("currency", "GBP")
	v.SetDefault("max_months", d.MaxMonths)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("fees.mortgage_arrangement", d.Fees.MortgageArrangement.Float64())
	v.SetDefault("fees.legal", d.Fees.Legal.Float64())
	v.SetDefault("fees.survey", d.Fees.Survey.Float64())
	v.SetDefault("fees.moving", d.Fees.Moving.Float64())
	v.SetDefault("fees.professional_moving", d.Fees.ProfessionalMoving.Float64())
	v.SetDefault("property.flat_value", d.FlatValue.Float64())
	v.SetDefault("property.house_value", d.HouseValue.Float64())
	v.SetDefault("property.term_years", d.TermYears)
	v.SetDefault("property.standard_rate", d.StandardRate.Float64())
	v.SetDefault("property.low_deposit_rate", d.LowDepositRate.Float64())
	v.SetDefault("property.low_deposit_threshold", d.LowDepositThreshold.Float64())
	v.SetDefault("property.professional_move", d.ProfessionalMove)
	v.SetDefault("costs.maintenance_rate", d.MaintenanceRate.Float64())
	v.SetDefault("costs.service_charge", d.ServiceCharge.Float64())
	v.SetDefault("costs.rent", d.Rent.Float64())
	v.SetDefault("lettings.flat_rent", d.FlatRent.Float64())
	v.SetDefault("lettings.house_rent", d.HouseRent.Float64())
	v.SetDefault("lettings.management_rate", d.ManagementRate.Float64())
	v.SetDefault("lettings.term_years", d.BuyToLetTermYears)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("cannot read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ladder.ErrInvalidConfiguration, err)
	}
	if err := cfg.Assumptions().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Assumptions returns the simulation inputs described by the configuration.
func (c Config) Assumptions() ladder.Assumptions {
	return ladder.Assumptions{
		Fees: ladder.Fees{
			MortgageArrangement: ladder.A(c.Fees.MortgageArrangement),
			Legal:               ladder.A(c.Fees.Legal),
			Survey:              ladder.A(c.Fees.Survey),
			Moving:              ladder.A(c.Fees.Moving),
			ProfessionalMoving:  ladder.A(c.Fees.ProfessionalMoving),
		},
		FlatValue:           ladder.A(c.Property.FlatValue),
		HouseValue:          ladder.A(c.Property.HouseValue),
		TermYears:           c.Property.TermYears,
		StandardRate:        ladder.R(c.Property.StandardRate),
		LowDepositRate:      ladder.R(c.Property.LowDepositRate),
		LowDepositThreshold: ladder.R(c.Property.LowDepositThreshold),
		ProfessionalMove:    c.Property.ProfessionalMove,
		MaintenanceRate:     ladder.R(c.Costs.MaintenanceRate),
		ServiceCharge:       ladder.A(c.Costs.ServiceCharge),
		Rent:                ladder.A(c.Costs.Rent),
		FlatRent:            ladder.A(c.Lettings.FlatRent),
		HouseRent:           ladder.A(c.Lettings.HouseRent),
		ManagementRate:      ladder.R(c.Lettings.ManagementRate),
		BuyToLetTermYears:   c.Lettings.TermYears,
		MaxMonths:           c.MaxMonths,
	}
}
