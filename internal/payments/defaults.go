package payments

// DefaultCatalog returns the methods offered at checkout when no
// PAYMENT_METHODS_FILE is configured.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Method{
			Key:         MethodMercadoPago,
			Label:       "MercadoPago",
			Description: "Tarjetas, Rapipago, PagoFácil (Automático).",
			Type:        SettlementRedirect,
			Link:        "https://www.mercadopago.com/tu_link_de_pago",
			LinkKind:    LinkPaymentPage,
		},
		Method{
			Key:         MethodTransfer,
			Label:       "Transferencia Bancaria",
			Description: "CBU / Alias (Argentina).",
			Type:        SettlementManual,
			Warning:     "El pedido se procesará una vez verificado el comprobante.",
			Data: []Instruction{
				{Label: "banco", Value: "Santander / Galicia"},
				{Label: "alias", Value: "TU.ALIAS.MP"},
				{Label: "cbu", Value: "00000000000000000000"},
				{Label: "titular", Value: "Tu Nombre"},
			},
		},
		Method{
			Key:         MethodTipfunder,
			Label:       "Tipfunder (Tarjeta)",
			Description: "Abonar en USD con tarjeta de crédito/débito desde cualquier país.",
			Type:        SettlementRedirect,
			Link:        "https://tipfunder.com/TU_USUARIO",
			LinkKind:    LinkPaymentPage,
		},
		Method{
			Key:         MethodUSDT,
			Label:       "USDT (Cripto)",
			Description: "Transferencia vía red TRC20 o BEP20.",
			Type:        SettlementManual,
			Warning:     "Revisa bien la red antes de enviar. Transferencias en otra red se perderán.",
			Data: []Instruction{
				{Label: "network", Value: "TRC20 (Tron)"},
				{Label: "address", Value: "TU_BILLETERA_USDT_AQUI_XXXXXXXX"},
			},
		},
		Method{
			Key:         MethodAirtm,
			Label:       "Airtm",
			Description: "Envío directo por correo electrónico.",
			Type:        SettlementManual,
			Warning:     "IMPORTANTE: En la sección de notas escribe SOLAMENTE un punto \".\". No escribas nada más.",
			Data: []Instruction{
				{Label: "email", Value: "tu_email_airtm@ejemplo.com"},
				{Label: "usuario", Value: "@tu_usuario_airtm"},
			},
		},
		Method{
			Key:         MethodSkrill,
			Label:       "Skrill",
			Description: "Saldo en USD.",
			Type:        SettlementManual,
			Warning:     "IMPORTANTE: No coloques ninguna nota o comentario en el envío.",
			Data: []Instruction{
				{Label: "email", Value: "tu_email_skrill@ejemplo.com"},
			},
		},
		Method{
			Key:         MethodPrex,
			Label:       "Prex a Prex",
			Description: "Transferencia internacional.",
			Type:        SettlementManual,
			Warning:     "Solo se aceptan transferencias en USD desde otra cuenta Prex.",
			Data: []Instruction{
				{Label: "cuenta", Value: "XXXXXXX (Argentina)"},
				{Label: "titular", Value: "Tu Nombre Completo"},
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
