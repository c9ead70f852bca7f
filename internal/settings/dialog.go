package settings

// InfoDialogRequest asks the host to show an informational dialog.
type InfoDialogRequest struct {
	Title   string
	Message string
}

// DialogRequester delivers dialog requests. Delivery is fire-and-forget.
type DialogRequester interface {
	RequestInfoDialog(req InfoDialogRequest)
}

type DialogFunc func(req InfoDialogRequest)

func (f DialogFunc) RequestInfoDialog(req InfoDialogRequest) { f(req) }
