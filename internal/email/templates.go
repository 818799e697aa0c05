package email

import "fmt"

func renderApplicationReceived(projectTitle, applicantName string) string {
	return fmt.Sprintf(`
<h2>You have a new application</h2>
<p><strong>%s</strong> applied to your project <strong>%s</strong>.</p>
<p>Open your inbox to read the application and reply to the candidate.</p>
`, applicantName, projectTitle)
}
