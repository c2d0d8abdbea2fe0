package dig_container

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/rapor/apps/api/echo"
	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
	"github.com/trezcool/rapor/core/tabular"
	"github.com/trezcool/rapor/services/export"
	logsvc "github.com/trezcool/rapor/services/logger"
	"github.com/trezcool/rapor/services/schoolapi"
	"github.com/trezcool/rapor/storage/inmem"
)

type ServerParams struct {
	dig.In

	Conf       *core.Config
	Logger     core.Logger
	GradeSvc   *grade.Service
	RosterSvc  *roster.Service
	Exporters  tabular.Registry
	Validate   *validator.Validate
	Translator ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newTranslator(conf *core.Config, logger core.Logger) ut.Translator {
	translator := core.NewTranslator(conf.Locale)
	for _, trs := range []core.Translations{grade.Labels, roster.Labels} {
		if err := core.RegisterTranslations(translator, trs); err != nil {
			logger.Fatal("registering labels", err)
		}
	}
	return translator
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newGradeService(
	conf *core.Config,
	backend grade.Backend,
	repo grade.SheetRepository,
	validate *validator.Validate,
) *grade.Service {
	return grade.NewService(backend, repo, validate, conf.Sheets.TTL)
}

func newExporters(translator ut.Translator, logger core.Logger) tabular.Registry {
	reg, err := export.NewRegistry(translator)
	if err != nil {
		logger.Fatal("setting up exporters", err)
	}
	return reg
}

func newServer(p ServerParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		GradeSvc:   p.GradeSvc,
		RosterSvc:  p.RosterSvc,
		Exporters:  p.Exporters,
		Validate:   p.Validate,
		Translator: p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(schoolapi.NewClient, dig.As(new(grade.Backend), new(roster.Backend))))
	must(c.Provide(inmem.Open))
	must(c.Provide(inmem.NewSheetRepository))
	must(c.Provide(newGradeService))
	must(c.Provide(roster.NewService))
	must(c.Provide(newExporters))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
