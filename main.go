package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-summary/dataset"
	"github.com/bitmark-inc/covid-summary/report"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covid_summary")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("dataset.path", "data/covid_sample.csv")
	viper.SetDefault("report.out", "out")
	viper.SetDefault("report.top_n", report.DefaultOptions().TopN)
	viper.SetDefault("report.min_confirmed", report.DefaultOptions().MinConfirmed)
	viper.SetDefault("report.province_country", report.DefaultOptions().ProvinceCountry)
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if dsn := viper.GetString("sentry.dsn"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			AttachStacktrace: true,
			Environment:      viper.GetString("sentry.environment"),
			Dist:             viper.GetString("sentry.dist"),
		}); err != nil {
			log.Error(err)
		}
		log.WithField("prefix", "init").Info("Initialized sentry")
	}

	datasetPath := viper.GetString("dataset.path")
	if datasetPath == "" {
		log.WithField("prefix", "init").Panic("no dataset path configured")
	}

	writer := report.NewWriter(
		dataset.FileProvider{Path: datasetPath},
		report.Options{
			TopN:            viper.GetInt("report.top_n"),
			MinConfirmed:    viper.GetInt64("report.min_confirmed"),
			ProvinceCountry: viper.GetString("report.province_country"),
		},
	)

	if err := writer.Write(viper.GetString("report.out")); err != nil {
		log.WithField("prefix", "init").Panic(err)
	}
}
