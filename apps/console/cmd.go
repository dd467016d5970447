package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/progress"
	"github.com/trezcool/shule/core/quiz"
	"github.com/trezcool/shule/core/user"
)

var readPasswordFunc = term.ReadPassword // mockable

type commandLine struct {
	usrSvc   *user.Service
	crsSvc   *course.Service
	quizSvc  *quiz.Service
	progSvc  *progress.Service
	validate *validator.Validate

	// at most one logged-in user at a time; a new login replaces it
	sess auth.Session
}

func (cli *commandLine) printUsage(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  register  - create an account (instructor, student or admin)")
	fmt.Fprintln(out, "  login     - log in; replaces the current session")
	fmt.Fprintln(out, "  sections  - show the sections your role may see")
	fmt.Fprintln(out, "  addcourse - create a course (instructors only)")
	fmt.Fprintln(out, "  courses   - list your courses")
	fmt.Fprintln(out, "  quiz      - take the quiz (students only)")
	fmt.Fprintln(out, "  progress  - show your progress summary")
	fmt.Fprintln(out, "  help      - show this help")
	fmt.Fprintln(out, "  quit      - leave")
}

func (cli *commandLine) run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	cli.printUsage(out)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "register":
			cli.register(scanner, out)
		case "login":
			cli.login(scanner, out)
		case "sections":
			cli.sections(out)
		case "addcourse":
			cli.addCourse(scanner, out)
		case "courses":
			cli.courses(out)
		case "quiz":
			cli.takeQuiz(scanner, out)
		case "progress":
			cli.progress(out)
		case "help":
			cli.printUsage(out)
		case "quit", "exit":
			return nil
		case "":
		default:
			cli.printUsage(out)
		}
	}
}

func (cli *commandLine) register(scanner *bufio.Scanner, out io.Writer) {
	nu := user.NewUser{
		Username: prompt(scanner, out, "Username: "),
		Role:     user.Role(prompt(scanner, out, "Role (instructor|student|admin): ")),
		Email:    prompt(scanner, out, "Email (optional): "),
		Password: promptPassword(out),
	}
	if err := nu.Validate(cli.validate); err != nil {
		printErr(out, err)
		return
	}
	if _, err := cli.usrSvc.Register(nu); err != nil {
		printErr(out, err)
		return
	}
	fmt.Fprintln(out, "Registration successful! You can now log in.")
}

func (cli *commandLine) login(scanner *bufio.Scanner, out io.Writer) {
	uname := prompt(scanner, out, "Username: ")
	pwd := promptPassword(out)

	usr, err := cli.usrSvc.Authenticate(uname, pwd)
	if err != nil {
		printErr(out, err)
		return
	}
	cli.sess = auth.NewSession(usr)
	fmt.Fprintf(out, "Welcome, %s (%s)!\n", usr.Username, usr.Role)
}

func (cli *commandLine) sections(out io.Writer) {
	for _, section := range auth.VisibleSections(cli.sess.Role) {
		fmt.Fprintf(out, "  %s\n", section)
	}
}

func (cli *commandLine) addCourse(scanner *bufio.Scanner, out io.Writer) {
	nc := course.NewCourse{
		Title:   prompt(scanner, out, "Title: "),
		Content: prompt(scanner, out, "Content: "),
	}
	if _, err := cli.crsSvc.Create(cli.sess, nc); err != nil {
		printErr(out, err)
		return
	}
	fmt.Fprintln(out, "Course created!")
}

func (cli *commandLine) courses(out io.Writer) {
	courses, err := cli.crsSvc.ListByInstructor(cli.sess.Username)
	if err != nil {
		printErr(out, err)
		return
	}
	if len(courses) == 0 {
		fmt.Fprintln(out, "No courses created yet.")
		return
	}
	for _, crs := range courses {
		fmt.Fprintf(out, "  %d. %s - %s\n", crs.ID, crs.Title, crs.Preview())
	}
}

func (cli *commandLine) takeQuiz(scanner *bufio.Scanner, out io.Writer) {
	questions := cli.quizSvc.Questions()
	sub := make(quiz.Submission, len(questions))

	for i, q := range questions {
		fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
		for idx, option := range q.Options {
			fmt.Fprintf(out, "   [%d] %s\n", idx, option)
		}
		if answer := prompt(scanner, out, "Your answer (blank to skip): "); answer != "" {
			sub[i] = answer
		}
	}

	score, err := cli.quizSvc.Submit(cli.sess, sub)
	if err != nil {
		printErr(out, err)
		return
	}
	fmt.Fprintf(out, "You scored %d out of %d\n", score, cli.quizSvc.Len())
}

func (cli *commandLine) progress(out io.Writer) {
	summary, err := cli.progSvc.Summarize(cli.sess)
	if err != nil {
		printErr(out, err)
		return
	}

	switch summary.Role {
	case user.RoleStudent:
		if summary.QuizScore != nil {
			fmt.Fprintf(out, "Quiz Score: %d\n", *summary.QuizScore)
		} else {
			fmt.Fprintln(out, "Quiz Score: N/A")
		}
	case user.RoleInstructor:
		fmt.Fprintf(out, "You have created %d course(s).\n", *summary.CourseCount)
	case user.RoleAdmin:
		fmt.Fprintf(out, "Total Users: %d, Total Courses: %d\n", *summary.TotalUsers, *summary.TotalCourses)
	default: // anonymous
		fmt.Fprintln(out, "Log in first.")
	}
}

func prompt(scanner *bufio.Scanner, out io.Writer, msg string) string {
	fmt.Fprint(out, msg)
	if !scanner.Scan() {
		return ""
	}
	return core.CleanString(scanner.Text())
}

func promptPassword(out io.Writer) string {
	fmt.Fprint(out, "Password: ")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(out)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(pwd))
}

func printErr(out io.Writer, err error) {
	switch origErr := err.(type) {
	case validator.ValidationErrors:
		for _, fErr := range origErr {
			fmt.Fprintf(out, "error: %s: %s\n", fErr.Field(), fErr.Tag())
		}
	case *core.ValidationError:
		if len(origErr.Fields) > 0 {
			for _, fErr := range origErr.Fields {
				fmt.Fprintf(out, "error: %s: %s\n", fErr.Field, fErr.Error)
			}
			break
		}
		fmt.Fprintf(out, "error: %s\n", origErr)
	default:
		fmt.Fprintf(out, "error: %s\n", err)
	}
}
