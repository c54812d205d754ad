package serverconfig

import (
	"log"

	"github.com/beevik/etree"
	"github.com/pkg/errors"

	"github.com/sdtdops/sdtdctl/pkg/utils"
)

const (
	adminPlatform = "Steam"

	// Permission level 0 is the highest the server knows.
	adminPermissionLevel = "0"
)

// SyncAdmins inserts every identifier from ids into the admin document
// at path unless an entry with the same (platform, userid) already
// exists. Identifiers are inserted as given. Returns the number of
// entries added.
func SyncAdmins(path string, ids []string) (int, error) {
	if !utils.IsFileExists(path) {
		return 0, ErrDocumentNotFound
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return 0, errors.WithMessagef(err, "failed to parse %s", path)
	}

	users := doc.FindElement("//users")
	if users == nil {
		return 0, errors.Errorf("no users element in %s", path)
	}

	added := 0

	for _, id := range ids {
		if adminExists(users, id) {
			log.Printf("admin %s already exists\n", id)

			continue
		}

		user := users.CreateElement("user")
		user.CreateAttr("platform", adminPlatform)
		user.CreateAttr("userid", id)
		user.CreateAttr("permission_level", adminPermissionLevel)
		added++

		log.Printf("admin %s added\n", id)
	}

	if added == 0 {
		return 0, nil
	}

	return added, writeDocument(doc, path)
}

func adminExists(users *etree.Element, id string) bool {
	for _, user := range users.SelectElements("user") {
		if user.SelectAttrValue("platform", "") == adminPlatform &&
			user.SelectAttrValue("userid", "") == id {
			return true
		}
	}

	return false
}
