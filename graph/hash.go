package graph

import (
	"github.com/google/uuid"
	"github.com/minio/highwayhash"
	"strconv"
	"strings"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// parameterNamespace scopes synthetic parameter ids
var parameterNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("modelgraph:parameter"))

func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// RelationshipID derives a stable id from the parts of a relationship the source left without one
func RelationshipID(parts ...string) string {
	value, _ := Hash([]byte(strings.Join(parts, "\x00")))
	return "rel-" + strconv.FormatUint(value, 16)
}

// ParameterID derives a stable id for a parameter the source left without one
func ParameterID(operationID, name string, position int) string {
	return uuid.NewSHA1(parameterNamespace, []byte(operationID+"\x00"+name+"\x00"+strconv.Itoa(position))).String()
}
