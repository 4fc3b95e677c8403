package tenant

// RecordTypeRegistry maps record type names to their concrete model.
var RecordTypeRegistry = map[string]interface{}{
	ReservationRecordType: ReservationRecord{},
	TenantRecordType:      TenantRecord{},
}
