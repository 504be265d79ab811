// Package csrf looks up, issues and verifies CSRF tokens stored in the
// visitor's session.
//
// The session itself is out of scope: any value store with GetString and Set
// satisfies Store, including the request session of the host application.
//
//	m := csrf.New(csrf.WithParamName("CMS_CSRF_TOKEN"))
//
//	// Rendering a form.
//	name, token, err := m.Input(sess)
//
//	// Verifying a submission.
//	if err := m.Validate(r, sess); err != nil {
//	    // errors.Is(err, csrf.ErrTokenMissing) or csrf.ErrTokenMismatch
//	}
//
// Lookup reads the submitted token from the request header first, then from
// the form body and query string. Safe methods (GET, HEAD, OPTIONS, TRACE)
// always pass validation. Middleware rejects failed requests with 403.
package csrf
