package billing

import "fmt"

// buildSubscriptionActivatedEmail returns the email content for a newly activated subscription.
func buildSubscriptionActivatedEmail(userName, planKey, baseURL string) (subject, html, plainText string) {
	subject = "Sua assinatura VivaSaúde está ativa"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Assinatura Ativada!</h2>
			<p>Olá %s,</p>
			<p>Sua assinatura do plano <strong>%s</strong> está ativa. A partir de agora você tem:</p>
			<ul>
				<li>Perfil profissional destacado na busca</li>
				<li>Agenda online com confirmação automática</li>
				<li>Suporte prioritário</li>
			</ul>
			<p><a href="%s/painel" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Ir para o Painel</a></p>
			<p>Obrigado,<br>Equipe VivaSaúde</p>
		</body>
		</html>
	`, userName, planKey, baseURL)

	plainText = fmt.Sprintf(`Olá %s,

Sua assinatura do plano %s está ativa. A partir de agora você tem:

- Perfil profissional destacado na busca
- Agenda online com confirmação automática
- Suporte prioritário

Acesse seu painel: %s/painel

Obrigado,
Equipe VivaSaúde
`, userName, planKey, baseURL)

	return
}

// buildSubscriptionCancelledEmail returns the email content for a cancelled subscription.
func buildSubscriptionCancelledEmail(userName, baseURL string) (subject, html, plainText string) {
	subject = "Sua assinatura VivaSaúde foi cancelada"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Assinatura Cancelada</h2>
			<p>Olá %s,</p>
			<p>Sentimos muito em ver você partir. Sua assinatura foi cancelada.</p>
			<p><strong>Seu perfil continua visível no plano gratuito.</strong> Seus dados e histórico de agendamentos permanecem disponíveis.</p>
			<p>Você pode reativar sua assinatura a qualquer momento pelo painel:</p>
			<p><a href="%s/painel/assinatura" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Reativar Assinatura</a></p>
			<p>Se tiver qualquer feedback, adoraríamos ouvir em suporte@vivasaude.com.br.</p>
			<p>Obrigado,<br>Equipe VivaSaúde</p>
		</body>
		</html>
	`, userName, baseURL)

	plainText = fmt.Sprintf(`Olá %s,

Sentimos muito em ver você partir. Sua assinatura foi cancelada.

Seu perfil continua visível no plano gratuito. Seus dados e histórico de agendamentos permanecem disponíveis.

Você pode reativar sua assinatura a qualquer momento pelo painel:
%s/painel/assinatura

Se tiver qualquer feedback, adoraríamos ouvir em suporte@vivasaude.com.br.

Obrigado,
Equipe VivaSaúde
`, userName, baseURL)

	return
}

// buildSubscriptionRenewedEmail returns the email content for a renewed subscription.
func buildSubscriptionRenewedEmail(userName, planKey, nextBillingDate, baseURL string) (subject, html, plainText string) {
	subject = "Sua assinatura VivaSaúde foi renovada"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Assinatura Renovada</h2>
			<p>Olá %s,</p>
			<p>Sua assinatura do plano <strong>%s</strong> foi renovada com sucesso.</p>
			<p><strong>Próxima cobrança:</strong> %s</p>
			<p><a href="%s/painel" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Ir para o Painel</a></p>
			<p>Obrigado,<br>Equipe VivaSaúde</p>
		</body>
		</html>
	`, userName, planKey, nextBillingDate, baseURL)

	plainText = fmt.Sprintf(`Olá %s,

Sua assinatura do plano %s foi renovada com sucesso.

Próxima cobrança: %s

Acesse seu painel: %s/painel

Obrigado,
Equipe VivaSaúde
`, userName, planKey, nextBillingDate, baseURL)

	return
}

// buildPaymentFailedEmail returns the email content when a payment fails.
func buildPaymentFailedEmail(userName, baseURL string) (subject, html, plainText string) {
	subject = "Ação necessária: falha no pagamento da sua assinatura VivaSaúde"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Falha no Pagamento</h2>
			<p>Olá %s,</p>
			<p>Não conseguimos processar o pagamento da sua assinatura. Tentaremos novamente nos próximos dias.</p>
			<p>Para evitar a suspensão da sua assinatura, atualize sua forma de pagamento:</p>
			<p><a href="%s/painel/assinatura" style="background-color: #f44336; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Atualizar Pagamento</a></p>
			<p>Obrigado,<br>Equipe VivaSaúde</p>
		</body>
		</html>
	`, userName, baseURL)

	plainText = fmt.Sprintf(`Olá %s,

Não conseguimos processar o pagamento da sua assinatura. Tentaremos novamente nos próximos dias.

Para evitar a suspensão da sua assinatura, atualize sua forma de pagamento:
%s/painel/assinatura

Obrigado,
Equipe VivaSaúde
`, userName, baseURL)

	return
}
