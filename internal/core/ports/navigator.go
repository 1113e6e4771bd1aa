package ports

// Navigator is the injected navigation side-channel. The session manager
// calls it with literal routes (dashboard after login, login after
// logout/registration/expiry); what "navigating" means is the consumer's
// business — a browser shell changes location, the CLI logs the target.
type Navigator interface {
	Redirect(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Redirect(path string) { f(path) }
