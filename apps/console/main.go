package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/progress"
	"github.com/trezcool/shule/core/quiz"
	"github.com/trezcool/shule/core/user"
	emailsvc "github.com/trezcool/shule/services/email"
	inmemdb "github.com/trezcool/shule/storage/inmem"
)

// A single-user terminal client embedding the whole core in-process: the
// Directory only lives as long as the session, like the original page.
func main() {
	defer os.Exit(0)

	logger := log.New(os.Stdout, "CONSOLE : ", log.LstdFlags)

	conf := core.NewConfig()

	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(err)
	}

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	usrSvc := user.NewService(inmemdb.NewUserRepository(db), emailsvc.NewConsoleServiceMock(conf), conf)
	crsSvc := course.NewService(inmemdb.NewCourseRepository(db))
	progSvc := progress.NewService(inmemdb.NewProgressRepository(db), usrSvc, crsSvc)
	quizSvc := quiz.NewService(quiz.NewEngine(quiz.DefaultBank()), progSvc)

	cli := &commandLine{
		usrSvc:   usrSvc,
		crsSvc:   crsSvc,
		quizSvc:  quizSvc,
		progSvc:  progSvc,
		validate: validate,
	}
	if err := cli.run(os.Stdin, os.Stdout); err != nil {
		logger.Printf("\nerror: %s\n", err)
		os.Exit(1)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
