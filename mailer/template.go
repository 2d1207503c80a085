package mailer

// confirmationTemplate is the HTML body of the booking confirmation mail.
// Placeholders are substituted by FillTemplate.
const confirmationTemplate = `
<!-- Preheader -->
<span style="display:none !important;">
  Your appointment is confirmed. See details inside.
</span>

<table role="presentation" cellpadding="0" cellspacing="0" width="100%" style="background:#f9fafb; padding:24px; font-family:Arial, Helvetica, sans-serif;">
  <tr>
    <td align="center">
      <table role="presentation" cellpadding="0" cellspacing="0" width="100%" style="max-width:600px; background:#ffffff; border-radius:12px; overflow:hidden; border:1px solid #e5e7eb;">

        <!-- Header -->
        <tr>
          <td align="center" style="padding:32px 16px;">
            <div style="font-size:22px; font-weight:600; color:#111827;">Appointment Confirmed</div>
            <div style="font-size:14px; color:#6b7280; margin-top:6px;">Thank you for booking with Ketpa</div>
          </td>
        </tr>

        <!-- Body -->
        <tr>
          <td style="padding:0 32px 24px; color:#374151; font-size:15px; line-height:1.6;">
            Hello <strong>{{patientName}}</strong>,<br><br>
            Your appointment has been <span style="color:#059669; font-weight:600;">confirmed</span>. We look forward to seeing you!
          </td>
        </tr>

        <!-- Appointment Summary -->
        <tr>
          <td style="padding:0 32px 32px;">
            <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#f9fafb; border:1px solid #e5e7eb; border-radius:8px;">
              <tr>
                <td style="padding:16px; font-size:14px; color:#374151; line-height:1.6;">
                  <div><strong>Date:</strong> {{dateFormatted}}</div>
                  <div><strong>Time:</strong> {{timeFormatted}} <span style="color:#6b7280;">{{timezone}}</span></div>
                  <div><strong>Doctor:</strong> Dr. {{doctorName}}</div>
                  <div><strong>Clinic:</strong> {{clinicName}}</div>
                  <div><strong>Location:</strong><br>{{addressLine1}}<br>{{addressLine2}}</div>
                  <div><strong>Booking ID:</strong> {{bookingId}}</div>
                </td>
              </tr>
            </table>
          </td>
        </tr>

        <!-- CTA -->
        <tr>
          <td align="center" style="padding:20px;">
            <a href="{{addToCalendarUrl}}" target="_blank"
              style="display:inline-block; padding:12px 20px; color:#ffffff; background:#0a8f3c; text-decoration:none; font-weight:bold; font-size:14px; border-radius:8px;">
              Add to Calendar
            </a>
            <div style="margin-top:12px; font-size:12px; color:#6b7280;">
              Need directions? <a href="{{mapsUrl}}" style="color:#013cfc; text-decoration:underline;">Open in Maps</a>
            </div>
          </td>
        </tr>

        <!-- Support -->
        <tr>
          <td style="padding:24px 32px; font-size:13px; color:#6b7280; border-top:1px solid #f3f4f6;">
            Have questions or need to reschedule?
            <a href="{{rescheduleUrl}}" style="color:#2563eb; text-decoration:none;">Manage booking</a>
            or email us at <a href="mailto:support@ketpa.com" style="color:#2563eb; text-decoration:none;">support@ketpa.com</a>.
          </td>
        </tr>

        <!-- Footer -->
        <tr>
          <td align="center" style="background:#f9fafb; padding:16px;">
            <div style="color:#9ca3af; font-size:12px; line-height:18px;">
              &copy; {{year}} Ketpa. All rights reserved.<br/>
              Ketpa Clinics, {{city}}, India
            </div>
          </td>
        </tr>

      </table>
    </td>
  </tr>
</table>
`
