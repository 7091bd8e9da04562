// Package main generates random strings, or serves them with "strgen serve".
//
//	strgen [amount] [length] [mode] [next] [writeToFile]
package main

import (
	"fmt"
	"math"
	"net/http"
	"os"

	rice "github.com/GeertJohan/go.rice"
	"github.com/gorilla/handlers"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/synacor/strgen/server"
	"github.com/synacor/strgen/strgen"
)

const defaultPort = 5000

var maxPort = int(math.Pow(2, 16) - 1)

func main() {
	// reminder, that viper will only look at the first config file it sees
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/strgen")
	viper.SetEnvPrefix("strgen")
	viper.BindEnv("port")
	viper.BindEnv("log_level")
	viper.BindEnv("lists_dir")
	viper.BindEnv("output")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("port", defaultPort)
	viper.SetDefault("lists_dir", strgen.ListsDir)
	viper.SetDefault("output", strgen.DefaultOutput)
	if err := viper.ReadInConfig(); err != nil {
		// viper requires a config file to be present for some reason. this will check for that error
		// and silently ignore it
		if _, isConfigFileNotFoundError := err.(viper.ConfigFileNotFoundError); !isConfigFileNotFoundError {
			panic(err)
		}
	}
	configureLogger()
	strgen.ListsDir = viper.GetString("lists_dir")

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "serve" {
		serve()
		return
	}

	conf, err := strgen.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	r := strgen.NewRunner()
	r.Output = viper.GetString("output")
	if err := r.Run(conf); err != nil {
		log.WithFields(log.Fields{"mode": conf.Mode, "next": conf.Next}).Fatal(err)
	}
}

func configureLogger() {
	levelStr := viper.GetString("log_level")
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		log.Fatalf("level %s does not exist", levelStr)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func serve() {
	port := viper.GetInt("port")
	if port <= 0 || port > maxPort {
		log.Fatalf("PORT must be 0 < PORT <= %d", maxPort)
	}

	s := server.New(rice.MustFindBox("templates"))

	done := make(chan bool, 1)
	go s.ListenForEvents(done)
	go func() {
		pstr := fmt.Sprintf(":%d", port)
		log.WithFields(log.Fields{"pid": os.Getpid()}).Printf("Listening on %s", pstr)
		log.Fatal(http.ListenAndServe(pstr, handlers.CombinedLoggingHandler(os.Stdout, s.ServeMux())))
	}()

	<-done
}
