package route

// Names of the views the quiz routes render.
const (
	HomeView     = "home"
	QuizView     = "quiz"
	ResultsView  = "results"
	NotFoundView = "not_found"
)

// NotFoundName names the catch-all route of the quiz routes.
const NotFoundName = "404"

// QuizDefinitions returns the routes of the quiz web app in match order.
func QuizDefinitions(load ViewLoader) []Definition {
	return []Definition{
		{Pattern: "/", Name: "home", Loader: load(HomeView), Meta: Meta{TitleKey: "Home"}},
		{Pattern: "/quiz/:slug", Name: "quiz", Loader: load(QuizView), Meta: Meta{TitleKey: "Quiz"}},
		{Pattern: "/results", Name: "results", Loader: load(ResultsView), Meta: Meta{TitleKey: "Resultados"}},
		{Pattern: "/:pathMatch(.*)*", Name: NotFoundName, Loader: load(NotFoundView), Meta: Meta{TitleKey: "Não encontrado"}},
	}
}
