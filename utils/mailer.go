package utils

import (
	"fmt"

	"resto-app/config"

	"gopkg.in/gomail.v2"
)

// SendCredentialMail mengirim kredensial awal ke user baru. Best effort:
// kalau SMTP tidak dikonfigurasi, tidak ada yang dikirim.
func SendCredentialMail(toEmail, nama, password string) error {
	if config.SMTPHost == "" || config.SMTPSender == "" {
		return nil
	}

	subject := "Akun Resto App"
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Halo %s</h3>
				<p>Akun kamu sudah dibuat. Password awal: <strong>%s</strong></p>
				<p>Segera ganti password setelah login pertama.</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, nama, password)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("Gagal mengirim email kredensial:", err)
		return err
	}

	return nil
}
