package errs

// Err

type Err string

func (e Err) Error() string {
	return string(e)
}

// ErrWithDesc

type ErrWithDesc struct {
	Err  Err
	Desc string
}

func (e ErrWithDesc) Error() string {
	return e.Err.Error() + ", desc:" + e.Desc
}

func (e ErrWithDesc) Unwrap() error {
	return e.Err
}

// errors

const (
	InvalidCredentials = Err("invalid_credentials")
	InvalidFormat      = Err("invalid_format")
	ServiceNA          = Err("service_not_available")
	NotAuthorized      = Err("not_authorized")
	BadStatusCode      = Err("bad_status_code")
	BadResponse        = Err("bad_response")
	FailResponse       = Err("fail_response")
)
