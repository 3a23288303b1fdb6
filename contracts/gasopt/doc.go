/*
Package gasopt implements GasOpt contract which tracks gas-optimization
reviews of other contracts.

An owner submits a contract together with the initial gas estimate. Anyone can
add optimization suggestions for a submitted contract, while only the owner can
mark them implemented, record gas usage of particular executions, pay an
analyzer in GAS and finally generate the report with the measured original and
optimized gas values. The report assigns an optimization score from the share of
saved gas and credits the paid analyzer's reputation.

Contract keeps network-wide statistics: number of submitted contracts, total
saved gas and number of implemented suggestions. Saved gas is accumulated both
from implemented suggestions (their estimated savings) and from generated
reports (measured savings); these tallies are not reconciled.

All failures abort the transaction with a message starting with one of the
error kinds from gasoptconst package.

payForAnalysis transfers GAS on behalf of the owner from within the contract,
so the owner's signer must have a witness scope allowing GAS to be called by
GasOpt: CustomContracts with GAS contract hash (or Global). With the default
CalledByEntry scope GAS rejects the witness and the call fails with
"transfer failed".

# Contract notifications

SubmissionCreated notification. This notification is produced when a contract
is submitted for the review.

	SubmissionCreated:
	  - name: contractID
	    type: Hash160
	  - name: owner
	    type: Hash160
	  - name: gasEstimate
	    type: Integer

SuggestionAdded notification. This notification is produced when a new
suggestion is stored.

	SuggestionAdded:
	  - name: contractID
	    type: Hash160
	  - name: index
	    type: Integer
	  - name: severity
	    type: String
	  - name: estimatedSavings
	    type: Integer

SuggestionImplemented notification. This notification is produced when the
owner marks suggestion implemented.

	SuggestionImplemented:
	  - name: contractID
	    type: Hash160
	  - name: index
	    type: Integer
	  - name: estimatedSavings
	    type: Integer

GasUsageRecorded notification. This notification is produced when the owner
records gas usage of an execution.

	GasUsageRecorded:
	  - name: contractID
	    type: Hash160
	  - name: executionID
	    type: Integer
	  - name: gasUsed
	    type: Integer

AnalysisPaid notification. This notification is produced after successful GAS
transfer from the owner to the analyzer.

	AnalysisPaid:
	  - name: contractID
	    type: Hash160
	  - name: analyzer
	    type: Hash160
	  - name: amount
	    type: Integer

ReportGenerated notification. This notification is produced when the report is
generated.

	ReportGenerated:
	  - name: contractID
	    type: Hash160
	  - name: gasSaved
	    type: Integer
	  - name: score
	    type: Integer

ReputationUpdated notification. This notification is produced when the paid
analyzer is credited with saved gas.

	ReputationUpdated:
	  - name: analyzer
	    type: Hash160
	  - name: reputationScore
	    type: Integer
*/
package gasopt

/*
Contract storage model.

Current conventions:
 <contract>: 20-byte script hash of the submitted contract
 <analyzer>: 20-byte script hash of the analyzer account
 <index>: NeoVM integer converted to bytes

# Summary
Key-value storage format:
 - 't' -> std.Serialize(Stats)
   network-wide counters
 - 's<contract>' -> std.Serialize(Submission)
   submission of the contract
 - 'n<contract>' -> std.Serialize(SuggestionCounter)
   number of suggestions of the contract
 - 'g<contract><index>' -> std.Serialize(Suggestion)
   suggestions of the contract counted from 0
 - 'u<contract><index>' -> std.Serialize(GasUsage)
   gas usage records by owner-chosen execution ID
 - 'p<contract>' -> std.Serialize(Payment)
   the latest analysis payment
 - 'r<analyzer>' -> std.Serialize(Reputation)
   analyzer reputation, never removed
*/
