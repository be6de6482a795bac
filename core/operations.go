package core

// operationSchemas is the closed operation registry, one entry per defined
// op-id. Gaps (16, 21, 22, 23, 36, 37, 38) correspond to op-ids the chain
// never actually emitted into a block log and carry no schema; decoding one
// is ErrUnknownOperation. Field order and types follow the wire layout of
// each operation exactly.
var operationSchemas = map[int]OperationSchema{
	0: {Name: "vote", Fields: []FieldSpec{
		{Name: "voter", Type: TString},
		{Name: "author", Type: TString},
		{Name: "permlink", Type: TString},
		{Name: "weight", Type: TUint16},
	}},
	1: {Name: "comment", Fields: []FieldSpec{
		{Name: "parent_author", Type: TString},
		{Name: "parent_permlink", Type: TString},
		{Name: "author", Type: TString},
		{Name: "permlink", Type: TString},
		{Name: "title", Type: TString},
		{Name: "body", Type: TString},
		{Name: "json_metadata", Type: TString},
	}},
	2: {Name: "transfer", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "to", Type: TString},
		{Name: "amount", Type: TAmount},
		{Name: "memo", Type: TString},
	}},
	3: {Name: "transfer_to_vesting", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "to", Type: TString},
		{Name: "amount", Type: TAmount},
	}},
	4: {Name: "withdraw_vesting", Fields: []FieldSpec{
		{Name: "account", Type: TString},
		{Name: "vesting_shares", Type: TAmount},
	}},
	5: {Name: "limit_order_create", Fields: []FieldSpec{
		{Name: "owner", Type: TString},
		{Name: "orderid", Type: TUint32},
		{Name: "amount_to_sell", Type: TAmount},
		{Name: "min_to_receive", Type: TAmount},
		{Name: "fill_or_kill", Type: TBool},
		{Name: "expiration", Type: TTimestamp},
	}},
	6: {Name: "limit_order_cancel", Fields: []FieldSpec{
		{Name: "owner", Type: TString},
		{Name: "orderid", Type: TUint32},
	}},
	7: {Name: "feed_publish", Fields: []FieldSpec{
		{Name: "publisher", Type: TString},
		{Name: "exchange_rate", Type: TExchangeRate},
	}},
	8: {Name: "convert", Fields: []FieldSpec{
		{Name: "owner", Type: TString},
		{Name: "requestid", Type: TUint32},
		{Name: "amount", Type: TAmount},
	}},
	9: {Name: "account_create", Fields: []FieldSpec{
		{Name: "fee", Type: TAmount},
		{Name: "creator", Type: TString},
		{Name: "new_account_name", Type: TString},
		{Name: "owner", Type: TPermission},
		{Name: "active", Type: TPermission},
		{Name: "posting", Type: TPermission},
		{Name: "memo_key", Type: TPubkey},
		{Name: "json_metadata", Type: TString},
	}},
	10: {Name: "account_update", Fields: []FieldSpec{
		{Name: "account", Type: TString},
		{Name: "owner", Type: TOptPermission},
		{Name: "active", Type: TOptPermission},
		{Name: "posting", Type: TOptPermission},
		{Name: "memo_key", Type: TPubkey},
		{Name: "json_metadata", Type: TString},
	}},
	11: {Name: "witness_update", Fields: []FieldSpec{
		{Name: "owner", Type: TString},
		{Name: "url", Type: TString},
		{Name: "block_signing_key", Type: TPubkey},
		{Name: "props", Type: TProps},
		{Name: "fee", Type: TAmount},
	}},
	12: {Name: "account_witness_vote", Fields: []FieldSpec{
		{Name: "account", Type: TString},
		{Name: "witness", Type: TString},
		{Name: "approve", Type: TBool},
	}},
	13: {Name: "account_witness_proxy", Fields: []FieldSpec{
		{Name: "account", Type: TString},
		{Name: "proxy", Type: TString},
	}},
	14: {Name: "pow", Fields: []FieldSpec{
		{Name: "worker_account", Type: TString},
		{Name: "block_id", Type: THex20},
		{Name: "nonce", Type: TUint64},
		{Name: "worker", Type: TPubkey},
		{Name: "input", Type: THex32},
		{Name: "signature", Type: THex65},
		{Name: "work", Type: THex32},
		{Name: "props", Type: TProps},
	}},
	15: {Name: "custom", Fields: []FieldSpec{
		{Name: "required_auths", Type: TList, Elem: TString},
		{Name: "id", Type: TUint16},
		{Name: "data", Type: THex},
	}},
	// 16: report_over_production — never emitted, no schema.
	17: {Name: "delete_comment", Fields: []FieldSpec{
		{Name: "author", Type: TString},
		{Name: "permlink", Type: TString},
	}},
	18: {Name: "custom_json", Fields: []FieldSpec{
		{Name: "required_auths", Type: TList, Elem: TString},
		{Name: "required_posting_auths", Type: TList, Elem: TString},
		{Name: "id", Type: TString},
		{Name: "json", Type: TString},
	}},
	19: {Name: "comment_options", Fields: []FieldSpec{
		{Name: "author", Type: TString},
		{Name: "permlink", Type: TString},
		{Name: "max_accepted_payout", Type: TAmount},
		{Name: "percent_steem_dollars", Type: TUint16},
		{Name: "allow_votes", Type: TBool},
		{Name: "allow_curation_rewards", Type: TBool},
		{Name: "extensions", Type: TList, Elem: TCommentOptionsExtension},
	}},
	20: {Name: "set_withdraw_vesting_route", Fields: []FieldSpec{
		{Name: "from_account", Type: TString},
		{Name: "to_account", Type: TString},
		{Name: "percent", Type: TUint16},
		{Name: "auto_vest", Type: TBool},
	}},
	// 21: limit_order_create2 — never emitted, no schema.
	// 22: challenge_authority — never emitted, no schema.
	// 23: prove_authority — never emitted, no schema.
	24: {Name: "request_account_recovery", Fields: []FieldSpec{
		{Name: "recovery_account", Type: TString},
		{Name: "account_to_recover", Type: TString},
		{Name: "new_owner_authority", Type: TPermission},
		{Name: "extensions", Type: TList, Elem: TString},
	}},
	25: {Name: "recover_account", Fields: []FieldSpec{
		{Name: "account_to_recover", Type: TString},
		{Name: "new_owner_authority", Type: TPermission},
		{Name: "recent_owner_authority", Type: TPermission},
		{Name: "extensions", Type: TList, Elem: TString},
	}},
	26: {Name: "change_recovery_account", Fields: []FieldSpec{
		{Name: "account_to_recover", Type: TString},
		{Name: "new_recovery_account", Type: TString},
		{Name: "extensions", Type: TList, Elem: TString},
	}},
	27: {Name: "escrow_transfer", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "to", Type: TString},
		{Name: "sbd_amount", Type: TAmount},
		{Name: "steem_amount", Type: TAmount},
		{Name: "escrow_id", Type: TUint32},
		{Name: "agent", Type: TString},
		{Name: "fee", Type: TAmount},
		{Name: "json_metadata", Type: TString},
		{Name: "ratification_deadline", Type: TTimestamp},
		{Name: "escrow_expiration", Type: TTimestamp},
	}},
	28: {Name: "escrow_dispute", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "to", Type: TString},
		{Name: "who", Type: TString},
		{Name: "escrow_id", Type: TUint32},
	}},
	29: {Name: "escrow_release", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "to", Type: TString},
		{Name: "agent", Type: TString},
		{Name: "who", Type: TString},
		{Name: "receiver", Type: TString},
		{Name: "escrow_id", Type: TUint32},
		{Name: "sbd_amount", Type: TAmount},
		{Name: "steem_amount", Type: TAmount},
	}},
	30: {Name: "pow2", Fields: []FieldSpec{
		{Name: "work", Type: TPowWork},
		{Name: "new_owner_key", Type: TOptPubkey},
		{Name: "props", Type: TProps},
	}},
	31: {Name: "escrow_approve", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "to", Type: TString},
		{Name: "agent", Type: TString},
		{Name: "who", Type: TString},
		{Name: "escrow_id", Type: TUint32},
		{Name: "approve", Type: TBool},
	}},
	32: {Name: "transfer_to_savings", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "to", Type: TString},
		{Name: "amount", Type: TAmount},
		{Name: "memo", Type: TString},
	}},
	33: {Name: "transfer_from_savings", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "request_id", Type: TUint32},
		{Name: "to", Type: TString},
		{Name: "amount", Type: TAmount},
		{Name: "memo", Type: TString},
	}},
	34: {Name: "cancel_transfer_from_savings", Fields: []FieldSpec{
		{Name: "from", Type: TString},
		{Name: "request_id", Type: TUint32},
	}},
	35: {Name: "custom_binary", Fields: []FieldSpec{
		{Name: "id", Type: TUint16},
		{Name: "data", Type: THex},
	}},
	// 36: decline_voting_rights — never emitted, no schema.
	// 37: reset_account — never emitted, no schema.
	// 38: set_reset_account — never emitted, no schema.
	39: {Name: "claim_reward_balance", Fields: []FieldSpec{
		{Name: "account", Type: TString},
		{Name: "reward_steem", Type: TAmount},
		{Name: "reward_sbd", Type: TAmount},
		{Name: "reward_vests", Type: TAmount},
	}},
	40: {Name: "delegate_vesting_shares", Fields: []FieldSpec{
		{Name: "delegator", Type: TString},
		{Name: "delegatee", Type: TString},
		{Name: "vesting_shares", Type: TAmount},
	}},
	41: {Name: "account_create_with_delegation", Fields: []FieldSpec{
		{Name: "fee", Type: TAmount},
		{Name: "delegation", Type: TAmount},
		{Name: "creator", Type: TString},
		{Name: "new_account_name", Type: TString},
		{Name: "owner", Type: TPermission},
		{Name: "active", Type: TPermission},
		{Name: "posting", Type: TPermission},
		{Name: "memo_key", Type: TPubkey},
		{Name: "json_metadata", Type: TString},
		{Name: "extensions", Type: TList, Elem: TString},
	}},
}

// OperationName returns the canonical name for an operation id, and false
// if the id has no defined schema.
func OperationName(id int) (string, bool) {
	s, ok := operationSchemas[id]
	if !ok {
		return "", false
	}
	return s.Name, true
}
