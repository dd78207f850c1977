package common

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "airline_session"

// FlashCookieName is the cookie carrying one-shot notices between a
// redirect and the page that displays them.
const FlashCookieName = "airline_flash"
