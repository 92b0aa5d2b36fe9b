package dealership

import (
	"fmt"
	"strings"
)

// WelcomeMessage greets a first-time user by name and presents the main menu.
func WelcomeMessage(name string) string {
	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "¡Hola %s! 👋 Bienvenido a %s.\n\n", name, Info.Name)
	} else {
		fmt.Fprintf(&b, "¡Hola! 👋 Bienvenido a %s.\n\n", Info.Name)
	}
	b.WriteString("Soy tu asistente virtual y estoy aquí para ayudarte a encontrar tu próximo coche.\n\n")
	b.WriteString("¿En qué puedo ayudarte hoy?\n\n")
	b.WriteString(MainMenu())
	return b.String()
}

// MainMenu lists what the assistant can do.
func MainMenu() string {
	return strings.Join([]string{
		"🔍 *Buscar coches* - dime qué buscas (marca, color, tipo...)",
		"📋 *Ver detalles* - pide la ficha de cualquier vehículo",
		"📅 *Agendar cita* - reserva una visita o prueba de manejo",
		"📞 *Contacto* - horarios, dirección y teléfono",
	}, "\n")
}

// AppointmentBlock renders the booking invitation with today's open slots.
func AppointmentBlock(slots []string) string {
	var b strings.Builder
	b.WriteString("¡Perfecto! 📅 Me encantaría agendar tu visita.\n\n")
	b.WriteString("*Nuestro horario de atención:*\n")
	b.WriteString("Lunes a Viernes: 9:00 - 18:00\n")
	b.WriteString("Sábados: 9:00 - 14:00\n\n")
	if len(slots) > 0 {
		b.WriteString("*Horas disponibles hoy:*\n")
		for _, s := range slots {
			fmt.Fprintf(&b, "• %s\n", s)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Nos encontrarás en: %s\n\n", Info.Address)
	b.WriteString("Dime qué día y hora te vienen bien y lo dejamos reservado. 😊")
	return b.String()
}

// CompanyInfoBlock renders hours, address and contact details.
func CompanyInfoBlock() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏢 *%s*\n\n", Info.Name)
	b.WriteString("*Horario:*\n")
	for _, d := range openingHours {
		fmt.Fprintf(&b, "%s: %s\n", d.Day, d.Hours)
	}
	fmt.Fprintf(&b, "\n📍 %s\n", Info.Address)
	fmt.Fprintf(&b, "📞 %s\n", Info.Phone)
	fmt.Fprintf(&b, "✉️ %s\n", Info.Email)
	fmt.Fprintf(&b, "🌐 %s\n\n", Info.Website)
	b.WriteString("*Servicios:*\n")
	for _, s := range services {
		fmt.Fprintf(&b, "• %s\n", s)
	}
	return b.String()
}

// HelpMessage explains the commands and what the assistant understands.
func HelpMessage() string {
	return strings.Join([]string{
		"ℹ️ *Ayuda de " + Info.Name + "*",
		"",
		"Puedes escribirme con naturalidad, por ejemplo:",
		"• \"Busco un SUV azul\"",
		"• \"Más información del BMW X3\"",
		"• \"Quiero agendar una cita\"",
		"• \"¿Cuál es vuestro horario?\"",
		"",
		"*Comandos:*",
		"/menu - volver al menú principal",
		"/reset - empezar la conversación de cero",
		"/help - mostrar esta ayuda",
	}, "\n")
}

// AppointmentConfirmation renders the booking receipt for a confirmed slot.
func AppointmentConfirmation(appt Appointment) string {
	var b strings.Builder
	b.WriteString("✅ ¡Cita confirmada!\n\n")
	fmt.Fprintf(&b, "📅 Fecha: %s\n", appt.Date)
	fmt.Fprintf(&b, "🕐 Hora: %s\n", appt.Time)
	fmt.Fprintf(&b, "📍 %s\n", Info.Address)
	fmt.Fprintf(&b, "🔖 Referencia: %s\n\n", appt.ID)
	b.WriteString("Te esperamos. Si necesitas cambiarla, escríbeme y la movemos. 😊")
	return b.String()
}

// SlotTakenMessage explains a conflict and offers what remains open that day.
func SlotTakenMessage(date string, free []string) string {
	var b strings.Builder
	b.WriteString("Esa hora ya está reservada. 😔\n\n")
	if len(free) > 0 {
		fmt.Fprintf(&b, "*Horas libres el %s:*\n", date)
		for _, s := range free {
			fmt.Fprintf(&b, "• %s\n", s)
		}
		b.WriteString("\n¿Te viene bien alguna de estas?")
	} else {
		b.WriteString("Ese día está completo. ¿Quieres probar con otra fecha?")
	}
	return b.String()
}

// FinancingSimulation renders the monthly installment of each credit
// product for one vehicle's price.
func FinancingSimulation(vehicleName string, priceEUR int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Simulación de cuota - %s*\n\n", vehicleName)
	fmt.Fprintf(&b, "Precio: €%d\n\n", priceEUR)
	for _, opt := range FinancingOptions() {
		monthly := MonthlyPayment(float64(priceEUR), opt.AnnualRatePct, opt.TermMonths)
		fmt.Fprintf(&b, "*%s* (%.1f%%, %d meses)\n", opt.Name, opt.AnnualRatePct, opt.TermMonths)
		fmt.Fprintf(&b, "• Cuota: €%.0f al mes\n\n", monthly)
	}
	b.WriteString("Sin compromiso: los números finales dependen de tu perfil. ¿Quieres que un asesor te llame? 📞")
	return b.String()
}

// FinancingBlock presents the financing options.
func FinancingBlock() string {
	var b strings.Builder
	b.WriteString("💰 *Opciones de financiamiento*\n\n")
	for _, opt := range FinancingOptions() {
		fmt.Fprintf(&b, "*%s*\n", opt.Name)
		fmt.Fprintf(&b, "• Interés: %.1f%% anual\n", opt.AnnualRatePct)
		fmt.Fprintf(&b, "• Plazo: hasta %d meses\n", opt.TermMonths)
		fmt.Fprintf(&b, "• %s\n\n", opt.Description)
	}
	b.WriteString("Dime qué vehículo te interesa y te preparo una simulación de cuota. 📊")
	return b.String()
}
