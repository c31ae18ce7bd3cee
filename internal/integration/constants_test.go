package integration_test

import "time"

const (
	TestUserEmail    = "seeker@example.com"
	TestUserPassword = "Test123!@#"

	TestEmployerEmail = "employer@example.com"

	testPaystackSecret = "sk_test_integration"
	testCallbackURL    = "http://localhost:5173/payment/success"

	testResumeText = `Jane Doe
Senior Backend Engineer at Acme, 2019-2024
Skills: Go, PostgreSQL, Docker, Kubernetes`
)

const (
	waitFor = 2 * time.Second
	tick    = 20 * time.Millisecond
)
