package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User บัญชีผู้ใช้งานแอป
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"` // รับจาก frontend ได้ แต่ไม่ส่งกลับ
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
