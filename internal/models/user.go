package models

import "time"

// User is an identity record in the users collection. One is created on the
// first successful identity exchange for a new email and never deleted.
type User struct {
	ID               string    `json:"id"                bson:"id"`
	Email            string    `json:"email"             bson:"email"`
	Name             string    `json:"name"              bson:"name"`
	Picture          string    `json:"picture,omitempty" bson:"picture,omitempty"`
	Joined           time.Time `json:"joined"            bson:"joined"`
	BuildsShared     int       `json:"buildsShared"      bson:"buildsShared"`
	CoursesCompleted int       `json:"coursesCompleted"  bson:"coursesCompleted"`
	CommunityRank    string    `json:"communityRank"     bson:"communityRank"`
}

// Session is a bearer-credential row in the sessions collection. The token is
// the opaque credential issued by the identity provider at login; expiry is
// enforced lazily on lookup, not by a background sweep.
type Session struct {
	SessionToken string    `json:"session_token" bson:"session_token"`
	UserID       string    `json:"user_id"       bson:"user_id"`
	ExpiresAt    time.Time `json:"expires_at"    bson:"expires_at"`
	CreatedAt    time.Time `json:"created_at"    bson:"created_at"`
}

// SessionCreate is the JSON body for POST /api/auth/session.
type SessionCreate struct {
	SessionID string `json:"session_id"`
}
