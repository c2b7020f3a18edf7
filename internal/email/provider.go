package email

// Provider sends transactional mail. Mail is best-effort throughout the
// application: a missing SMTP configuration yields the disabled provider
// and is never an error.
type Provider interface {
	// SendVerification mails the verification link to the address.
	SendVerification(to, link string) error

	// Enabled reports whether mail will actually leave the process.
	Enabled() bool
}

// DisabledProvider is used when no SMTP relay is configured. Callers still
// hand the verification link back to the client, so the flow works without
// mail.
type DisabledProvider struct{}

func (p *DisabledProvider) SendVerification(to, link string) error { return nil }

func (p *DisabledProvider) Enabled() bool { return false }
