package notifications

import (
	"fmt"
	"html"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const displayDateFormat = "02 Jan 2006"

func bookingConfirmedText(c *domain.Customer, apt *domain.Appointment) string {
	var b strings.Builder
	b.WriteString("📅 <b>Appointment Confirmed!</b>\n\n")
	fmt.Fprintf(&b, "💇 <b>Service:</b> %s\n", esc(apt.ServiceName))
	fmt.Fprintf(&b, "📅 <b>Date:</b> %s\n", apt.Date.Format(displayDateFormat))
	fmt.Fprintf(&b, "⏰ <b>Time:</b> %s - %s\n", apt.StartTime, apt.EndTime)
	fmt.Fprintf(&b, "💰 <b>Points used:</b> %d\n", apt.PointsDeducted)
	fmt.Fprintf(&b, "🎯 <b>Remaining points:</b> %d\n\n", c.Points)
	b.WriteString("✅ Please arrive 10 minutes before your appointment.")
	return b.String()
}

func bookingConfirmedAdminText(c *domain.Customer, apt *domain.Appointment) string {
	return fmt.Sprintf("📋 <b>New Appointment Booked!</b>\n\n👤 %s (%s)\n💇 %s\n📅 %s %s - %s",
		esc(c.Name), esc(c.Phone), esc(apt.ServiceName),
		apt.Date.Format(displayDateFormat), apt.StartTime, apt.EndTime)
}

func bookingCancelledText(apt *domain.Appointment, refund domain.Refund) string {
	var b strings.Builder
	b.WriteString("❌ <b>Appointment Cancelled</b>\n\n")
	fmt.Fprintf(&b, "💇 %s\n📅 %s %s\n", esc(apt.ServiceName), apt.Date.Format(displayDateFormat), apt.StartTime)
	if apt.AdminCancelled && apt.CancellationReason != nil && *apt.CancellationReason != "" {
		fmt.Fprintf(&b, "📝 Reason: %s\n", esc(*apt.CancellationReason))
	}
	fmt.Fprintf(&b, "💰 Refunded: %d points", refund.Points)
	if refund.Late {
		b.WriteString(" (late cancellation penalty)")
	}
	return b.String()
}

func bookingCancelledAdminText(c *domain.Customer, apt *domain.Appointment, refund domain.Refund) string {
	by := "customer"
	if apt.AdminCancelled {
		by = "admin"
	}
	return fmt.Sprintf("🚫 <b>Appointment Cancelled</b> by %s\n\n👤 %s\n💇 %s\n📅 %s %s\n💰 Refund: %d points",
		by, esc(c.Name), esc(apt.ServiceName), apt.Date.Format(displayDateFormat), apt.StartTime, refund.Points)
}

func appointmentCompletedText(apt *domain.Appointment, reward int) string {
	return fmt.Sprintf("✅ Your appointment for %s has been completed! You've earned %d points.",
		esc(apt.ServiceName), reward)
}

func referralBonusText(reward int) string {
	return fmt.Sprintf("🎉 Referral bonus! You earned %d points for referring a customer!", reward)
}

func pointsUpdatedText(entry *domain.PointsHistory) string {
	var b strings.Builder
	b.WriteString("📊 Your points have been updated!\n")
	fmt.Fprintf(&b, "Previous: %d points\n", entry.OldPoints)
	fmt.Fprintf(&b, "Current: %d points\n", entry.NewPoints)
	fmt.Fprintf(&b, "Change: %+d points\n", entry.Difference)
	if entry.Reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n", esc(entry.Reason))
	}
	b.WriteString("Thank you for being our valued customer! 💝")
	return b.String()
}

func newReferralText(newcomer *domain.Customer) string {
	return fmt.Sprintf("🎉 New referral! %s registered using your link.", esc(newcomer.Name))
}

func newCustomerAdminText(c *domain.Customer) string {
	var b strings.Builder
	b.WriteString("👤 <b>New Customer Registered!</b>\n\n")
	fmt.Fprintf(&b, "Name: %s\nPhone: %s\n", esc(c.Name), esc(c.Phone))
	if handle := c.NotificationHandle(); handle != "" {
		fmt.Fprintf(&b, "Telegram: %s\n", esc(handle))
	}
	fmt.Fprintf(&b, "Points: %d\nReferral Code: %s", c.Points, c.ReferralCode)
	return b.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}
