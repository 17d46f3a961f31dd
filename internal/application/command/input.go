package command

// Input records problems found while decoding a request body. They are
// reported together with the field validation errors, so callers still see
// authentication and permission failures first.
type Input struct {
	decodeErr error
}

func (i *Input) SetDecodeError(err error) {
	i.decodeErr = err
}

func (i *Input) DecodeError() error {
	return i.decodeErr
}
