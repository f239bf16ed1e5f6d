package constants

import "os"

func GetIndexDir() string {
	path := os.Getenv("INDEX_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetListenAddr() string {
	addr := os.Getenv("TRIADEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// empty means DynamoDB is not used
func GetDynamoEndpoint() string {
	return os.Getenv("TRIADEX_DYNAMO_ENDPOINT")
}

func GetDynamoRegion() string {
	region := os.Getenv("TRIADEX_DYNAMO_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

func GetTableName() string {
	table := os.Getenv("TRIADEX_TABLE")
	if table != "" {
		return table
	}
	return "triadex-voicings"
}

// widest fret span a voicing may cover (4 consecutive frets)
const MaxSpan = 3

// the A shape diminished triad on the lower sets needs one more fret
const StretchMaxSpan = 4

const CatalogFilename = "catalog.dat"

// BatchWriteItem accepts at most 25 requests
const DynamoWriteBatchSize = 25

// BatchGetItem accepts at most 100 keys
const DynamoGetBatchSize = 100

// resubmissions of unprocessed items or keys before a batch call gives up
const DynamoMaxRetries = 6

const BeatsPerBar = 4
