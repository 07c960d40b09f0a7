package dig_container

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/attendo/apps/api/echo"
	"github.com/trezcool/attendo/core"
	"github.com/trezcool/attendo/core/attendance"
	"github.com/trezcool/attendo/core/student"
	logsvc "github.com/trezcool/attendo/services/logger"
	dummydb "github.com/trezcool/attendo/storage/database/dummy"
	"github.com/trezcool/attendo/storage/fixtures"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

func newRollbarLogger(conf *core.Config) *logsvc.RollbarLogger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

// newDB seeds the in-memory stores from the configured fixtures.
func newDB(conf *core.Config, loggerParam DBLoggerParam) (*dummydb.DB, error) {
	students, records, err := fixtures.Load(conf.Fixtures)
	if err != nil {
		return nil, errors.Wrap(err, "loading fixtures")
	}
	db, err := dummydb.Open(students, records)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	loggerParam.Logger.Info("database seeded", map[string]interface{}{
		"students":          len(students),
		"attendanceRecords": len(records),
	})
	return db, nil
}

func newInsights(conf *core.Config) attendance.Insights {
	return attendance.NewSyntheticInsights(conf.InsightsSeed)
}

func newValidate(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newRollbarLogger))
	must(c.Provide(func(l *logsvc.RollbarLogger) core.Logger { return l }))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))
	must(c.Provide(dummydb.NewStudentRepository))
	must(c.Provide(dummydb.NewAttendanceRepository))
	must(c.Provide(student.NewService))
	must(c.Provide(attendance.NewService))
	must(c.Provide(newInsights))
	must(c.Provide(newTranslator))
	must(c.Provide(newValidate))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
