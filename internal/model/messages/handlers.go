package messages

import (
	"context"
	"strings"
	"time"

	"max.ks1230/finance-tracker/internal/clients/api"
	"max.ks1230/finance-tracker/internal/entity/goal"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/entity/user"
	"max.ks1230/finance-tracker/internal/model/reports"
	"max.ks1230/finance-tracker/internal/model/store"
	"max.ks1230/finance-tracker/internal/utils"
)

const (
	dontUnderstandMessage = "I don't understand you :( Try /help"
	loveToTalkMessage     = "I would love to talk about it more! Try /help"
	loginRequiredMessage  = "Please /login first"
	somethingWrongMessage = "Something went wrong. Try again."

	allFieldsRequiredMessage = "All fields are required"
	passwordsMismatchMessage = "Passwords do not match"
	incorrectUsageMessage    = "That is an incorrect command usage. Try /help"
	incorrectAmountMessage   = "The amount should be a positive number with at most 2 decimals"
	incorrectDateMessage     = "The date is incorrect. Should be YYYY-MM-DD"
	incorrectEmailMessage    = "The email is incorrect"
	incorrectIDMessage       = "The ID is incorrect. Check /list"
	unknownCategoryMessage   = "Unknown category. See /categories"
)

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	signupCommand     = "/signup"
	loginCommand      = "/login"
	logoutCommand     = "/logout"
	incomeCommand     = "/income"
	expenseCommand    = "/expense"
	listCommand       = "/list"
	editCommand       = "/edit"
	deleteCommand     = "/delete"
	refreshCommand    = "/refresh"
	dashboardCommand  = "/dashboard"
	reportCommand     = "/report"
	goalsCommand      = "/goals"
	goalCommand       = "/goal"
	deleteGoalCommand = "/delgoal"
	profileCommand    = "/profile"
	categoriesCommand = "/categories"
)

const helpMessage = `Hello! I am your Finance Tracker bot 🤖

/signup <email> <password> <password again> <full name>
/login <email> <password>
/logout

/income <category> <amount> [YYYY-MM-DD] [description]
/expense <category> <amount> [YYYY-MM-DD] [description]
/list - your transactions with their IDs
/edit <id> <amount> <category> <YYYY-MM-DD> [description]
/delete <id>
/refresh - reload transactions

/dashboard - totals and charts
/report - expense report

/goals
/goal <category> <target> <YYYY-MM-DD> <title>
/delgoal <id>

/profile [<email> <full name>]
/categories`

var allCommands = []string{
	startCommand, helpCommand, signupCommand, loginCommand, logoutCommand,
	incomeCommand, expenseCommand, listCommand, editCommand, deleteCommand, refreshCommand,
	dashboardCommand, reportCommand, goalsCommand, goalCommand, deleteGoalCommand,
	profileCommand, categoriesCommand,
}

var publicCommands = []string{startCommand, helpCommand, signupCommand, loginCommand, categoriesCommand}

type financeAPI interface {
	Login(ctx context.Context, email, password string) (user.User, error)
	Signup(ctx context.Context, fullName, email, password string) error
	UpdateProfile(ctx context.Context, userID int64, fullName, email string) (user.User, error)

	ListTransactions(ctx context.Context, userID int64) ([]transaction.Transaction, error)
	AddTransaction(ctx context.Context, in api.AddRequest) (string, error)
	EditTransaction(ctx context.Context, id int64, in api.EditRequest) (*transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	ListGoals(ctx context.Context, userID int64) ([]goal.Goal, error)
	AddGoal(ctx context.Context, in api.AddGoalRequest) error
	DeleteGoal(ctx context.Context, id int64) error
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, userID int64) (*reports.Report, error)
}

type config interface {
	Timezone() *time.Location
}

type handler func(ctx context.Context, arg string, session *store.Store) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	api         financeAPI
	reports     reportGenerator
	sessions    *store.Registry
	loc         *time.Location
	now         func() time.Time
}

func newHandler(api financeAPI, reports reportGenerator, sessions *store.Registry, config config) *HandlerService {
	res := &HandlerService{
		api:      api,
		reports:  reports,
		sessions: sessions,
		loc:      config.Timezone(),
		now:      time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

// HandleMessage answers one chat message. A non-nil error comes with the
// notification to show instead of the regular answer.
func (s *HandlerService) HandleMessage(ctx context.Context, text string, chatID int64) (string, error) {
	cmd, arg := parseCommand(text)

	h, ok := s.handlersMap[cmd]
	if !ok {
		return dontUnderstandMessage, nil
	}

	session := s.sessions.Session(chatID)
	if cmd != "" && !utils.Contains(publicCommands, cmd) && !session.State().LoggedIn() {
		return loginRequiredMessage, nil
	}
	return h(ctx, arg, session)
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleStart
	m[signupCommand] = s.handleSignup
	m[loginCommand] = s.handleLogin
	m[logoutCommand] = s.handleLogout

	m[incomeCommand] = s.handleAdd(transaction.Income)
	m[expenseCommand] = s.handleAdd(transaction.Expense)
	m[listCommand] = s.handleList
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[refreshCommand] = s.handleRefresh

	m[dashboardCommand] = s.handleDashboard
	m[reportCommand] = s.handleReport

	m[goalsCommand] = s.handleGoals
	m[goalCommand] = s.handleAddGoal
	m[deleteGoalCommand] = s.handleDeleteGoal

	m[profileCommand] = s.handleProfile
	m[categoriesCommand] = s.handleCategories

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ *store.Store) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ *store.Store) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) today() time.Time {
	return s.now().In(s.loc)
}

func currentUser(session *store.Store) user.User {
	u := session.State().User
	if u == nil {
		return user.User{}
	}
	return *u
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}
