package viewmodels

type ErrorPage struct {
	BaseViewModel
	StatusCode int
	Heading    string
}
