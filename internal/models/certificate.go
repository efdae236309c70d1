package models

import "time"

// NFTCertificate records a module-completion certificate. The chain fields
// are simulated placeholders, not a real ledger write.
type NFTCertificate struct {
	ID                   string    `bson:"_id,omitempty" json:"id"`
	StudentID            string    `bson:"student_id" json:"studentId"`
	ModuleID             string    `bson:"module_id" json:"moduleId"`
	FinancialHealthScore int       `bson:"financial_health_score" json:"financialHealthScore"`
	NFTContractAddress   string    `bson:"nft_contract_address" json:"nftContractAddress"`
	NFTTokenID           string    `bson:"nft_token_id" json:"nftTokenId"`
	PolygonTxHash        string    `bson:"polygon_tx_hash" json:"polygonTxHash"`
	IssuedAt             time.Time `bson:"issued_at" json:"issuedAt"`
}
