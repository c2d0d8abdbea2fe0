package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
	"github.com/trezcool/rapor/services/export"
	"github.com/trezcool/rapor/services/schoolapi"
	"github.com/trezcool/rapor/storage/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stderr, "EXPORT : ", log.LstdFlags)
	conf := core.NewConfig()

	translator := core.NewTranslator(conf.Locale)
	for _, trs := range []core.Translations{grade.Labels, roster.Labels} {
		errAndDie(core.RegisterTranslations(translator, trs))
	}
	validate := validator.New()
	core.InitValidators(validate, translator)

	exporters, err := export.NewRegistry(translator)
	errAndDie(err)

	// start CLI
	backend := schoolapi.NewClient(conf)
	cli := commandLine{
		token:      conf.APIToken,
		gradeSvc:   grade.NewService(backend, inmem.NewSheetRepository(inmem.Open()), validate, 0),
		rosterSvc:  roster.NewService(backend),
		exporters:  exporters,
		translator: translator,
		stdout:     os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
